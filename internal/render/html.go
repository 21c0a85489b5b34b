// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/pdiddy/kgraph/internal/graph"
)

// HTML renders the graph as a self-contained interactive viewer built on
// the vis-network CDN bundle: node/edge stats, per-type filters, and a
// search box.
func HTML(g *graph.Graph) ([]byte, error) {
	doc, err := json.Marshal(NewDocument(g))
	if err != nil {
		return nil, fmt.Errorf("marshaling graph data: %w", err)
	}

	var buf bytes.Buffer
	err = viewerTemplate.Execute(&buf, viewerData{
		GraphJSON: template.JS(doc),
	})
	if err != nil {
		return nil, fmt.Errorf("rendering HTML viewer: %w", err)
	}
	return buf.Bytes(), nil
}

type viewerData struct {
	GraphJSON template.JS
}

var viewerTemplate = template.Must(template.New("viewer").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>Knowledge Graph - Interactive Viewer</title>
<script src="https://cdnjs.cloudflare.com/ajax/libs/vis-network/9.1.6/vis-network.min.js"></script>
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body { font-family: 'Segoe UI', sans-serif; background: #1a1a2e; color: #eee; display: flex; height: 100vh; }
  .sidebar { width: 300px; background: #16213e; padding: 20px; overflow-y: auto; border-right: 2px solid #0f3460; }
  .sidebar h2 { color: #e94560; margin-bottom: 16px; font-size: 1.3em; }
  .sidebar h3 { color: #00d9ff; margin: 14px 0 8px; font-size: 1em; }
  .search-box { width: 100%; padding: 10px; border: 2px solid #0f3460; border-radius: 6px;
                background: #1a1a2e; color: #fff; margin-bottom: 16px; }
  .stats { display: grid; grid-template-columns: 1fr 1fr; gap: 8px; margin-bottom: 16px; }
  .stat-box { background: #0f3460; padding: 12px; border-radius: 6px; text-align: center; }
  .stat-number { font-size: 22px; font-weight: bold; color: #00d9ff; }
  .stat-label { font-size: 11px; color: #aaa; }
  .filter-item { display: flex; align-items: center; margin: 6px 0; }
  .filter-item input { margin-right: 8px; }
  .color-dot { width: 12px; height: 12px; border-radius: 50%; margin-right: 6px; display: inline-block; }
  #graph { flex: 1; height: 100%; background: #1a1a2e; }
</style>
</head>
<body>
<div class="sidebar">
  <h2>Knowledge Graph</h2>
  <input type="text" class="search-box" id="searchBox" placeholder="Search nodes...">
  <div class="stats">
    <div class="stat-box"><div class="stat-number" id="nodeCount">0</div><div class="stat-label">Nodes</div></div>
    <div class="stat-box"><div class="stat-number" id="edgeCount">0</div><div class="stat-label">Edges</div></div>
  </div>
  <h3>Node types</h3>
  <div id="nodeFilters"></div>
  <h3>Relationships</h3>
  <div id="edgeFilters"></div>
</div>
<div id="graph"></div>
<script>
const graphData = {{.GraphJSON}};

let network = null;
const allNodes = graphData.nodes.map(n => ({
  id: n.id,
  label: n.label,
  title: n.type + ': ' + n.label + (n.doc ? '\n' + n.doc : '') + (n.line ? '\nline ' + n.line : ''),
  color: { background: n.color, border: '#fff' },
  font: { color: '#fff', size: 13 },
  size: n.size || 25,
  nodeType: n.type
}));
const allEdges = (graphData.edges || []).map((e, i) => ({
  id: i,
  from: e.source,
  to: e.target,
  label: e.label,
  color: { color: e.color },
  arrows: { to: { enabled: true, scaleFactor: 0.8 } },
  font: { color: '#aaa', size: 10, align: 'middle' },
  edgeType: e.label
}));

function initialize() {
  const container = document.getElementById('graph');
  network = new vis.Network(container, {
    nodes: new vis.DataSet(allNodes),
    edges: new vis.DataSet(allEdges)
  }, {
    physics: {
      barnesHut: { gravitationalConstant: -3000, centralGravity: 0.3, springLength: 150 },
      stabilization: { iterations: 100 }
    },
    interaction: { hover: true, tooltipDelay: 100 }
  });
  createFilters('nodeFilters', allNodes.map(n => n.nodeType), filterGraph);
  createFilters('edgeFilters', allEdges.map(e => e.edgeType), filterGraph);
  updateStats(allNodes.length, allEdges.length);
}

function createFilters(containerID, typeList, onChange) {
  const counts = {};
  typeList.forEach(t => { counts[t] = (counts[t] || 0) + 1; });
  const container = document.getElementById(containerID);
  Object.keys(counts).sort().forEach(type => {
    const item = document.createElement('div');
    item.className = 'filter-item';
    item.innerHTML = '<input type="checkbox" checked data-type="' + type + '">' +
                     '<label>' + type + ' (' + counts[type] + ')</label>';
    item.querySelector('input').addEventListener('change', onChange);
    container.appendChild(item);
  });
}

function activeTypes(containerID) {
  const active = new Set();
  document.querySelectorAll('#' + containerID + ' input:checked')
    .forEach(cb => active.add(cb.dataset.type));
  return active;
}

function filterGraph() {
  const nodeTypes = activeTypes('nodeFilters');
  const edgeTypes = activeTypes('edgeFilters');
  const nodes = allNodes.filter(n => nodeTypes.has(n.nodeType));
  const visible = new Set(nodes.map(n => n.id));
  const edges = allEdges.filter(e =>
    visible.has(e.from) && visible.has(e.to) && edgeTypes.has(e.edgeType));
  network.setData({ nodes: new vis.DataSet(nodes), edges: new vis.DataSet(edges) });
  updateStats(nodes.length, edges.length);
}

function updateStats(nodes, edges) {
  document.getElementById('nodeCount').textContent = nodes;
  document.getElementById('edgeCount').textContent = edges;
}

document.getElementById('searchBox').addEventListener('input', function(e) {
  const term = e.target.value.toLowerCase();
  if (term.length < 2) { network.unselectAll(); return; }
  const matches = allNodes.filter(n =>
    n.label.toLowerCase().includes(term) || n.nodeType.toLowerCase().includes(term));
  if (matches.length > 0) {
    network.selectNodes(matches.map(n => n.id));
    network.focus(matches[0].id, { scale: 1.2, animation: true });
  }
});

document.addEventListener('DOMContentLoaded', initialize);
</script>
</body>
</html>
`))
