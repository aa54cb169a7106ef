package ports

// FileStore reads the lockfile and persists the generated document.
//
//go:generate mockgen -source=filestore.go -destination=mocks/mock_filestore.go -package=mocks
type FileStore interface {
	// ReadLockfile returns the lockfile content at path.
	ReadLockfile(path string) (string, error)
	// WriteDocument atomically replaces the file at path with data.
	WriteDocument(path string, data []byte) error
}
