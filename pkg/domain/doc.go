// Package domain contains the core entities shared by the application: the
// transport types produced by the naming pipeline (project names, domain
// availability, ranked suggestions) and the records persisted per user
// (favorites, search history, API keys). They carry no infrastructure concerns
// so every layer can depend on them.
package domain
