/*
Package observability provides tools for monitoring the Espalier gallery.

It bridges the gallery's lifecycle hooks to Prometheus collectors, counting
runs, output lines, and run durations per demo.
*/
package observability
