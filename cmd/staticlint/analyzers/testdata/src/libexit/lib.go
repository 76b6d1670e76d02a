package libexit

import "os"

func main() {
	os.Exit(1)
}
