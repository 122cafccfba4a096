package core

// Entity is a stable handle for a live object in the world
// Handles are never reused within a session; zero is the invalid handle
type Entity uint64
