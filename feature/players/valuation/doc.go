// Package valuation fetches current trade values keyed by Sleeper id.
package valuation
