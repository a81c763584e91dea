// Package locate finds the game process and opens it for memory access.
package locate

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"hexbot/process"

	ps "github.com/shirou/gopsutil/process"
)

// ErrNotFound is returned when no running process matches.
var ErrNotFound = errors.New("process not found")

// MatchName reports whether the OS process name matches want. The
// comparison ignores case and an optional ".exe" suffix on either side.
func MatchName(have, want string) bool {
	norm := func(s string) string {
		return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), ".exe")
	}
	return want != "" && norm(have) == norm(want)
}

// ByName returns the matching process with the lowest pid.
func ByName(name string) (process.ProcessInfo, error) {
	procs, err := ps.Processes()
	if err != nil {
		return process.ProcessInfo{}, fmt.Errorf("list processes: %w", err)
	}

	var found []process.ProcessInfo
	for _, p := range procs {
		pname, err := p.Name()
		if err != nil {
			continue // exited or not ours to inspect
		}
		if MatchName(pname, name) {
			found = append(found, process.ProcessInfo{PID: process.ProcessID(p.Pid), Name: pname})
		}
	}

	if len(found) == 0 {
		return process.ProcessInfo{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	sort.Slice(found, func(i, j int) bool { return found[i].PID < found[j].PID })
	return found[0], nil
}

// ByPID checks that pid is running and returns its name.
func ByPID(pid process.ProcessID) (process.ProcessInfo, error) {
	exists, err := ps.PidExists(int32(pid))
	if err != nil {
		return process.ProcessInfo{}, fmt.Errorf("check pid %d: %w", pid, err)
	}
	if !exists {
		return process.ProcessInfo{}, fmt.Errorf("%w: pid %d", ErrNotFound, pid)
	}

	info := process.ProcessInfo{PID: pid}
	if p, err := ps.NewProcess(int32(pid)); err == nil {
		info.Name, _ = p.Name()
	}
	return info, nil
}

// Find resolves pid when non-zero, the process name otherwise.
func Find(pid process.ProcessID, name string) (process.ProcessInfo, error) {
	if pid != 0 {
		return ByPID(pid)
	}
	return ByName(name)
}
