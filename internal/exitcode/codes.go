package exitcode

// Exit codes for runcheck. Scripts branch on these to tell bad input data
// apart from a broken invocation.
const (
	// Success - every RUN checked was valid
	Success = 0

	// UsageError - bad flags, unreadable input or invalid configuration
	// Fix the invocation before retrying
	UsageError = 1

	// InvalidRUN - at least one RUN failed validation
	// The output lists which ones and why
	InvalidRUN = 2
)
