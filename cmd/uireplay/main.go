// Command uireplay replays scripted input against a scripted UI tree and
// prints the events each node receives.
package main

func main() {
	Execute()
}
