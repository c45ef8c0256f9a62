// Package ai defines the collaborator interfaces for the document QA
// pipeline: text embedding and answer generation.
//
// The package is designed around three key interfaces:
//
//   - Embedder: maps text to fixed-dimension vectors, with optional
//     query/passage role prefixing
//   - Generator: maps a prompt to a continuation under deterministic
//     decoding options
//   - AIProvider: aggregates both services and manages their lifecycle
//
// Two implementation sub-packages are included: openai provides clients
// for OpenAI-compatible APIs via langchaingo, and mock provides
// deterministic test doubles so the pipeline can be tested without model
// services.
//
// Models are heavy, process-wide collaborators. Providers are constructed
// once at startup and reused for all documents and queries, so load
// failures surface during initialization rather than per call.
package ai
