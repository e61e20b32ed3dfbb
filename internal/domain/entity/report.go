package entity

// CopyOutcome describes what a single logo copy did.
type CopyOutcome struct {
	DestDir    string
	DirCreated bool
	LogoCopied bool
}

// RunReport aggregates counters for one generator run.
type RunReport struct {
	RecordsLoaded      int
	DescriptorsByChain map[string]int
	SkippedByChain     map[string]int
	DirsCreated        int
	LogosCopied        int
	LogosSkipped       int
}

// NewRunReport returns a report with its maps initialised.
func NewRunReport() RunReport {
	return RunReport{
		DescriptorsByChain: make(map[string]int),
		SkippedByChain:     make(map[string]int),
	}
}

// Record folds a copy outcome into the report.
func (r *RunReport) Record(o CopyOutcome) {
	if o.DirCreated {
		r.DirsCreated++
	}
	if o.LogoCopied {
		r.LogosCopied++
	} else {
		r.LogosSkipped++
	}
}
