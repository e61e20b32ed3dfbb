package port

// RunRecorder receives counters produced while generating token lists.
type RunRecorder interface {
	ObserveRecords(count int)
	ObserveDescriptors(chain string, count int)
	ObserveSkipped(chain string, count int)
	ObserveCopy(dirCreated, logoCopied bool)
}
