package model

// Package model defines domain data structures used across the app: catalog
// movies, stored favorites, genres and the theme enum. Structures are decoded
// straight from the catalog API or mapped to the favorites table.
