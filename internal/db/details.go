// Package db opens PostgreSQL and Redshift connections from resolved cluster
// details and provides information_schema helpers over them.
package db

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

// ConnectionDetails holds everything needed to open a database connection.
type ConnectionDetails struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	Dialect  string // informational; the wire protocol is postgres either way
}

// DSN renders the postgres connection URL. The password is URL-escaped so
// special characters cannot break the URL structure, and host/port are joined
// with IPv6 handling.
func (d ConnectionDetails) DSN() string {
	hostPort := net.JoinHostPort(d.Host, strconv.Itoa(d.Port))
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s",
		// Usernames are lowercased; Redshift and our RDS clusters both store
		// them that way while DescribeClusters can report mixed case.
		url.QueryEscape(strings.ToLower(d.User)),
		url.QueryEscape(d.Password),
		hostPort,
		d.Database,
	)
}
