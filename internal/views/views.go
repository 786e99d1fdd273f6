package views

import "embed"

// Content holds the rendered pages for the notes web UI.
//
//go:embed layouts/* templates/* includes/*
var Content embed.FS
