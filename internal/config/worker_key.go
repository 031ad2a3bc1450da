package config

type WorkerKeyStruct struct {
	// GenerationQueue is the Redis list the generation worker polls for
	// queued question-generation jobs.
	GenerationQueue string
}

// WorkerKey is the registry of Redis queue names consumed by workers.
var WorkerKey = &WorkerKeyStruct{
	GenerationQueue: "worker:generation:queue",
}
