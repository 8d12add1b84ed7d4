// Package resilience holds fault tolerance helpers. The circuitbreaker
// subpackage guards database calls so an unavailable database fails requests
// fast instead of piling up connections.
package resilience
