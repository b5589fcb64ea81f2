package model

// Package model defines domain data structures used across the app: ZIP
// queries and their input filter, postal lookup results and places, lookup
// tasks, and the status and outcome enums that describe them.
