// Package pokedex provides a local, CLI-based Pokémon lookup tool.
// It parses free-form queries into a Pokémon name and the categories of
// information requested, looks the Pokémon up in the PokéAPI, and keeps a
// small locally persisted team.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, http/, afero-backed fs/).
package pokedex
