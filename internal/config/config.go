// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veridict Authors

package config

import (
	"fmt"
	"net/url"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// veridict backend. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and
// built-in defaults.
type StructuredConfig struct {
	// Server holds network address and timeout settings for the HTTP server.
	Server Server

	// Storage holds configuration for the relational database backend.
	Storage Storage

	// Classifier holds configuration for the external inference endpoint
	// that scores submitted content.
	Classifier Classifier
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// Address is the TCP address on which the HTTP server listens,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	Address string `env:"SERVER_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" envDefault:"30s"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	DB DB
}

// DB holds connection settings for the PostgreSQL backend. The individual
// pieces are recognised separately (DB_HOST, DB_PORT, ...) so that the
// service can be pointed at a database without assembling a DSN by hand.
type DB struct {
	// Host is the database server hostname.
	// Env: DB_HOST
	Host string `env:"DB_HOST" envDefault:"localhost"`

	// Port is the database server port.
	// Env: DB_PORT
	Port int `env:"DB_PORT" envDefault:"5432"`

	// User is the database role used for all connections.
	// Env: DB_USER
	User string `env:"DB_USER" envDefault:"postgres"`

	// Password is the database role's password. May be empty for trust or
	// peer authentication setups.
	// Env: DB_PASSWORD
	Password string `env:"DB_PASSWORD"`

	// Name is the database to connect to.
	// Env: DB_NAME
	Name string `env:"DB_NAME" envDefault:"veridict"`

	// SSLMode is passed through to the driver ("disable", "require", ...).
	// Env: DB_SSLMODE
	SSLMode string `env:"DB_SSLMODE" envDefault:"disable"`
}

// DSN assembles a PostgreSQL connection string from the individual settings.
func (db DB) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}
	if db.Password != "" {
		u.User = url.UserPassword(db.User, db.Password)
	} else {
		u.User = url.User(db.User)
	}

	q := url.Values{}
	q.Set("sslmode", db.SSLMode)
	u.RawQuery = q.Encode()

	return u.String()
}

// Classifier holds configuration for the pretrained sequence-classification
// model served over HTTP.
type Classifier struct {
	// Address is the base URL of the inference endpoint.
	// Env: CLASSIFIER_ADDRESS
	Address string `env:"CLASSIFIER_ADDRESS"`

	// RealLabelID is the class id treated as "real" when the model's label
	// names are uninformative (e.g. LABEL_0/LABEL_1). Zero is a valid id.
	// Env: REAL_LABEL_ID
	RealLabelID int `env:"REAL_LABEL_ID" envDefault:"1"`

	// RequestTimeout bounds a single inference round trip.
	// Env: CLASSIFIER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"CLASSIFIER_REQUEST_TIMEOUT" envDefault:"15s"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for fields they set):
//  1. Environment variables
//  2. Command-line flags
//  3. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withDefaults().
		build()
}
