// Package models defines the sink table and API shapes of the players feature.
package models
