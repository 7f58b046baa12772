/*
Package demo contains the core model of the Espalier gallery.

It defines the fundamental entities shared by every pattern demonstration:
the Demo contract itself, the Registry that holds the gallery catalog, the
Transcript produced by a run, and the LifecycleHooks used for observability.
This package is kept pure and free of external dependencies like persistence
or presentation, following Hexagonal Architecture principles.

# Key Entities

  - Demo: A named, self-contained pattern demonstration writing to an io.Writer.
  - Registry: The catalog of available demos, addressable by name.
  - Transcript: The recorded output of a single run, identified by a run ID.
  - Recorder: An io.Writer that captures demo output line by line.
  - LifecycleHooks: Callbacks for run start, per-line steps, and run end.
*/
package demo
