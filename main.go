// main.go - geo-bson entry point
package main

import "github.com/valpere/geo_bson/cmd"

func main() {
	cmd.Execute()
}
