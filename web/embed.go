// Package web carries the embedded presentation assets.
package web

import "embed"

// TemplatesFS holds the htmx page and partial templates.
//
//go:embed templates/*.html
var TemplatesFS embed.FS

// StaticFS holds the stylesheet and client-side script.
//
//go:embed static/*
var StaticFS embed.FS
