package badger

import (
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/reperio/internal/common"
	"github.com/ternarybob/reperio/internal/interfaces"
)

// Manager aggregates storage backends over a single Badger connection
type Manager struct {
	db            *BadgerDB
	vectorStorage *VectorStorage
	persistDir    string
	logger        arbor.ILogger
}

// NewManager opens the database and wires the typed storages
func NewManager(config *common.Config, logger arbor.ILogger) (*Manager, error) {
	db, err := NewBadgerDB(logger, &config.Storage.Badger)
	if err != nil {
		return nil, err
	}

	return &Manager{
		db:            db,
		vectorStorage: NewVectorStorage(db, config.Storage.Collection, logger),
		persistDir:    config.Storage.Badger.Path,
		logger:        logger,
	}, nil
}

// VectorStorage returns the document vector storage
func (m *Manager) VectorStorage() interfaces.VectorStorage {
	return m.vectorStorage
}

// PersistDir returns the on-disk location of the store
func (m *Manager) PersistDir() string {
	return m.persistDir
}

// Close closes the underlying database connection
func (m *Manager) Close() error {
	m.logger.Debug().Msg("Closing storage manager")
	return m.db.Close()
}
