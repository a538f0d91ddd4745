// Package environment names the deployment stage (development, staging,
// production) so that logging and configuration agree on it.
//
//	env := environment.Parse(os.Getenv("RUNCHECK_ENV"))
//	log := logger.New(logger.WithEnvironment(env, "runcheck"))
package environment
