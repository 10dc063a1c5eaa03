package database

import (
	"gorm.io/gorm"
)

type Database struct {
	profileRepo *ProfileRepo
	linkRepo    *LinkRepo
	leadRepo    *LeadRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		profileRepo: NewProfileRepo(db),
		linkRepo:    NewLinkRepo(db),
		leadRepo:    NewLeadRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProfileRepo() *ProfileRepo {
	return d.profileRepo
}

func (d Database) LinkRepo() *LinkRepo {
	return d.linkRepo
}

func (d Database) LeadRepo() *LeadRepo {
	return d.leadRepo
}
