// Package conn is the connectivity and schema-sync glue around the
// rewriter/marshaller core: DSN construction for the Presto driver, schema
// and table enumeration, and select-privilege probing.
//
// Nothing here participates in expression rewriting or value marshalling;
// the core consumes only the session zone this layer can read from a live
// connection.
package conn

import (
	"database/sql"
	"fmt"

	"github.com/trinodb/trino-go-client/trino"

	"github.com/roach88/prestoql/internal/config"
)

// Open builds a driver DSN from server settings and opens a database
// handle. The handle is lazy; Ping forces a round trip.
func Open(cfg config.ServerConfig) (*sql.DB, error) {
	dsn, err := FormatDSN(cfg)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("trino", dsn)
	if err != nil {
		return nil, fmt.Errorf("open connection: %w", err)
	}
	return db, nil
}

// FormatDSN maps server settings onto the driver's connector config.
func FormatDSN(cfg config.ServerConfig) (string, error) {
	source := cfg.Source
	if source == "" {
		source = "prestoql"
	}
	tc := trino.Config{
		ServerURI:         cfg.URI,
		Source:            source,
		Catalog:           cfg.Catalog,
		Schema:            cfg.Schema,
		SessionProperties: cfg.SessionProperties,
		SSLCertPath:       cfg.SSLCertPath,
	}
	if k := cfg.Kerberos; k.Enabled {
		tc.KerberosEnabled = "true"
		tc.KerberosPrincipal = k.Principal
		tc.KerberosRealm = k.Realm
		tc.KerberosKeytabPath = k.KeytabPath
		tc.KerberosConfigPath = k.ConfigPath
		tc.KerberosRemoteServiceName = k.RemoteServiceName
	}
	dsn, err := tc.FormatDSN()
	if err != nil {
		return "", fmt.Errorf("format dsn: %w", err)
	}
	return dsn, nil
}
