package main

import "github.com/killallgit/websearch-api/cmd"

// @title           Web Search API
// @version         1.0.0
// @description     Aggregated web search with provider fallback, result normalization, and per-user quotas
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/websearch-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
