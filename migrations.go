// Package smartdomain holds module-level assets shared by the binaries.
package smartdomain

import "embed"

// Migrations contains the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
