package db

type StoreType string

const (
	SQLite   StoreType = "sqlite"
	JSONFile StoreType = "jsonfile"
)

type Store interface {
	Connect() error
	Disconnect() error
}
