package repository

import (
	"gorm.io/gorm"
)

// Store runs every venue, artist and show operation against one injected
// handle. Mutations each run in their own transaction.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// EntityRef is the {id, name} pair used by listings and search results.
type EntityRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type SearchResult struct {
	Count int         `json:"count"`
	Data  []EntityRef `json:"data"`
}
