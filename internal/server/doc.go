// Package server runs the API hub: the HTTP listener and the background
// workers share one lifecycle, started together and stopped together on
// SIGTERM, SIGINT or SIGQUIT.
package server
