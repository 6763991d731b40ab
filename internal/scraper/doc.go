// Package scraper extracts structured records from NCRDB markup.
//
// The package covers three surfaces of the site: the state dropdown on
// the search form, the course listing grid that the server renders
// after a state is submitted, and the static tee-detail tables behind
// each course link. Listing pages require a browser render (the grid
// is produced server-side from a form post); the Renderer interface
// isolates that transport so extraction itself only ever sees markup.
package scraper
