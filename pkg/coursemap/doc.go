// Package coursemap renders the structure of a course as a Graphviz
// diagram: the course at the root, sections below it, and lectures and
// quizzes as leaves.
package coursemap
