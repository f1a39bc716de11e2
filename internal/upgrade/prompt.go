package upgrade

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// confirm asks the operator a yes/no question and waits up to timeout for an
// answer. No answer means no.
func confirm(input io.Reader, question string, timeout time.Duration) bool {
	answers := make(chan string, 1)
	go func() {
		scanner := bufio.NewScanner(input)
		if scanner.Scan() {
			answers <- strings.ToLower(strings.TrimSpace(scanner.Text()))
			return
		}
		answers <- ""
	}()

	fmt.Printf("%s [y/N]: ", question)

	select {
	case answer := <-answers:
		return answer == "y" || answer == "yes"
	case <-time.After(timeout):
		fmt.Println()
		return false
	}
}
