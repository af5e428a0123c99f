// Package generic implements a providers.Scraper for sites that server-render
// each ayah's commentary into a single HTML container. It fetches the page
// over HTTP and pulls the container text out with goquery.
package generic
