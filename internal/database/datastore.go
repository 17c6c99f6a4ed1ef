package database

// DataStore is the full persistence surface. State holders depend on the
// smaller interfaces; the application container holds the whole thing.
type DataStore interface {
	UserRepository
	TaskRepository
	PreferencesRepository
}

// Compile-time verification that *Repository implements DataStore
var _ DataStore = (*Repository)(nil)
