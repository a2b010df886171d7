package controller

const (
	base  = "static/base.html"
	index = "static/index.html"
	graph = "static/graph.html"
	stats = "static/stats.html"
)
