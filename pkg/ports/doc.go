/*
Package ports defines the driven ports (interfaces) for the Espalier gallery.

These interfaces decouple the gallery core from external implementations,
allowing transcripts to be kept in memory, in Redis, or in any backend that
satisfies the contract.

# Key Interfaces

  - TranscriptStore: Responsible for persisting and loading run Transcripts.

The package also ships RunTranscriptStoreContract, a reusable test suite that
every adapter must pass.
*/
package ports
