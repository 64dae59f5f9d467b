// Package lms talks to the LMS (learning management system) REST API that
// hosts the course: fetching the curriculum item list and per-lecture
// caption tracks, parsing the raw curriculum into the flat item and video
// lecture shapes the rest of the toolkit consumes, and persisting JSON
// snapshots under the project data directory.
//
// All requests go through a shared client that handles bearer
// authentication, response caching, and retry with backoff for transient
// failures. Responses are cached by course or lecture ID so repeated runs
// do not hammer the API.
package lms
