package multitask

// Task is one sub-command extracted from a compound command.
type Task struct {
	Command   string
	Index     int
	DependsOn []int
	Executed  bool
	Success   bool
	Result    string
}

// Outcome is the combined result of a multi-task run.
type Outcome struct {
	Response string
	Success  bool
	UsedLLM  bool
}
