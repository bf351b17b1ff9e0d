package domain

// KeyPrefix namespaces all keys written to the shared KV store.
const KeyPrefix = "archetype:"
