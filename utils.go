package main

import (
	"fmt"
	"github.com/tklauser/go-sysconf"
	"golang.org/x/term"
	"io"
	"os"
	"os/signal"
	"runtime/pprof"
	"strconv"
	"strings"
	"syscall"
	"time"
)

//
// Are we talking to a human?  Only if both ends are a terminal;
// otherwise we run as a filter and skip line editing altogether
//

func isInteractive() bool {

	return term.IsTerminal(int(os.Stdin.Fd())) &&
		term.IsTerminal(int(os.Stdout.Fd()))
}

//
// Statistics for the RUN that's in progress
//

func (s *session) initClock() {

	s.stats.numStatements = 0
	s.stats.elapsed = time.Now()
	s.stats.utime, s.stats.stime, _ = getCPUInfo()
}

func (s *session) printStatistics() {

	if !s.printStats {
		return
	}

	elapsed := time.Since(s.stats.elapsed)

	fmt.Fprintln(s.con.out)

	if utime, stime, err := getCPUInfo(); err == nil {
		fmt.Fprintf(s.con.out,
			"CPU Usage: elapsed = %s / user = %s / system = %s\n",
			formatCPUTime(int64(elapsed.Seconds())),
			formatCPUTime(utime-s.stats.utime),
			formatCPUTime(stime-s.stats.stime))
	} else {
		fmt.Fprintf(s.con.out, "Elapsed = %s\n",
			formatCPUTime(int64(elapsed.Seconds())))
	}

	fmt.Fprintf(s.con.out, "%d %s executed\n", s.stats.numStatements,
		pluralize("statement", s.stats.numStatements))
}

//
// Seconds as hh:mm:ss.  Hours are not capped at 24
//

func formatCPUTime(secs int64) string {

	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, secs%3600/60, secs%60)
}

//
// User and system CPU seconds for this process.  Linux only: anywhere
// /proc/self/stat doesn't exist we return an error and the caller
// settles for elapsed time
//

func getCPUInfo() (int64, int64, error) {

	clktck, err := sysconf.Sysconf(sysconf.SC_CLK_TCK)
	if err != nil {
		return 0, 0, err
	}

	contents, err := os.ReadFile("/proc/self/stat")
	if err != nil {
		return 0, 0, err
	}

	return parseProcStat(string(contents), clktck)
}

func parseProcStat(contents string, clktck int64) (int64, int64, error) {

	fields := strings.Fields(contents)
	if len(fields) < 15 || clktck <= 0 {
		return 0, 0, fmt.Errorf("malformed stat line")
	}

	utime, err := strconv.ParseInt(fields[13], 10, 64)
	if err != nil {
		return 0, 0, err
	}

	stime, err := strconv.ParseInt(fields[14], 10, 64)
	if err != nil {
		return 0, 0, err
	}

	return utime / clktck, stime / clktck, nil
}

func pluralize(str string, num int64) string {

	if num != 1 {
		return str + "s"
	}

	return str
}

//
// Runs in its own goroutine when interactive.  ^C only raises the
// interrupt flag, which the run loop checks between statements.
// ^\ writes every goroutine's stack to a file and exits
//

func sigHdlr(s *session) {

	ch := make(chan os.Signal, 1)

	signal.Notify(ch, syscall.SIGINT, syscall.SIGQUIT)

	for sig := range ch {
		if sig == syscall.SIGQUIT {
			writeGoroutineStacks()
		}

		s.interrupted.Store(true)
	}
}

func writeGoroutineStacks() {

	const name = "goroutines-stacks"

	if err := dumpGoroutineStacks(name); err != nil {
		crash(fmt.Sprintf("Unable to write %s (%v)", name, err))
	}

	crash("Dumped goroutine stacks to " + name)
}

func dumpGoroutineStacks(name string) error {

	f, err := os.Create(name)
	if err != nil {
		return err
	}

	if err := pprof.Lookup("goroutine").WriteTo(f, 2); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func crash(msg string) {

	cleanupLiners()

	if msg != "" {
		fmt.Fprintln(os.Stderr, msg)
	}

	os.Exit(1)
}

//
// Write each line of a help/listing table, used by LIST and HELP
//

func printLines(w io.Writer, lines []string) {

	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
}
