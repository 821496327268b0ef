package ports

// HostsStore reads and writes the bytes of one target hosts file. The core
// never touches the filesystem itself; implementations own the read/write
// policy (and any write-safety scheme such as temp-file-then-rename).
type HostsStore interface {
	Read() ([]byte, error)
	Write(b []byte) error
}
