// Package utils provides small generic helpers shared across numcast.
package utils
