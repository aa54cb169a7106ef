package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gembom/internal/adapters/bundler"                     //nolint:depguard // Wired in app layer
	"go.trai.ch/gembom/internal/adapters/config"                      //nolint:depguard // Wired in app layer
	"go.trai.ch/gembom/internal/adapters/cyclonedx"                   //nolint:depguard // Wired in app layer
	"go.trai.ch/gembom/internal/adapters/fs"                          //nolint:depguard // Wired in app layer
	"go.trai.ch/gembom/internal/adapters/logger"                      //nolint:depguard // Wired in app layer
	"go.trai.ch/gembom/internal/adapters/nexus"                       //nolint:depguard // Wired in app layer
	"go.trai.ch/gembom/internal/adapters/report"                      //nolint:depguard // Wired in app layer
	"go.trai.ch/gembom/internal/adapters/rubygems"                    //nolint:depguard // Wired in app layer
	telemetry "go.trai.ch/gembom/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/gembom/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.NodeID,
			bundler.NodeID,
			rubygems.NodeID,
			nexus.NodeID,
			cyclonedx.NodeID,
			report.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log, Telemetry: tel}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	files, err := graft.Dep[ports.FileStore](ctx)
	if err != nil {
		return nil, err
	}

	parser, err := graft.Dep[ports.LockfileParser](ctx)
	if err != nil {
		return nil, err
	}

	registries, err := graft.Dep[ports.RegistryFactory](ctx)
	if err != nil {
		return nil, err
	}

	repositories, err := graft.Dep[ports.RepositoryFactory](ctx)
	if err != nil {
		return nil, err
	}

	encoder, err := graft.Dep[ports.Encoder](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, files, parser, registries, repositories, encoder, reporter, tel, log), nil
}
