// Package process runs external executables on behalf of dataver.
//
// Every git and dvc invocation goes through a Runner. The production
// runner (Exec) delegates to the binaries found in PATH and inherits the
// user's environment, so credentials, SSH config and cloud SDK profiles keep
// working. It does not store or manage credentials.
//
// Key features:
//   - Stdout capture with stderr retained for error diagnostics
//   - A per-command timeout derived from the caller's context
//   - Structured *ProcessError values carrying the command and exit code
//   - A dry-run wrapper that skips commands not marked ReadOnly
//
// Example usage:
//
//	runner := process.NewExec(process.ExecOptions{Dir: root, Timeout: 10 * time.Minute})
//	res, err := runner.Run(ctx, process.Command{Name: "git", Args: []string{"status"}, ReadOnly: true})
//	var perr *process.ProcessError
//	if errors.As(err, &perr) {
//	    fmt.Println(perr.ExitCode)
//	}
package process
