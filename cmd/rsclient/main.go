// rsclient is a command line client for the RightSignature API.
package main

import "github.com/information-sharing-networks/rightsignature-go/internal/cli"

func main() {
	cli.Execute()
}
