// Package scene holds the object graph handed to a renderer: named
// nodes with hierarchical transforms, optional meshes, and a light.
//
// Nodes live in a flat arena owned by the Scene and refer to each other
// by index. Parent links are plain indices, so the graph has no owning
// back-references and no cycles of ownership.
package scene

import (
	"fmt"

	"github.com/Faultbox/orbis/internal/engine/model"
	"github.com/Faultbox/orbis/pkg/math"
)

// NodeID indexes a node inside its scene's arena.
type NodeID int

// NoNode is the parent of root nodes.
const NoNode NodeID = -1

// Light is a point light with Phong shading terms.
type Light struct {
	Position math.Vec3
	Color    math.Vec3
	Ambient  float32
	Diffuse  float32
	Specular float32
}

// NewLight returns a light with stock Phong coefficients.
func NewLight(position, color math.Vec3) Light {
	return Light{
		Position: position,
		Color:    color,
		Ambient:  0.1,
		Diffuse:  0.8,
		Specular: 0.5,
	}
}

// Node is one entry in the scene arena.
type Node struct {
	Name      string
	Transform math.Transform
	Mesh      *model.Mesh

	parent   NodeID
	children []NodeID
}

// Parent returns the node's parent, NoNode for roots.
func (n *Node) Parent() NodeID { return n.parent }

// Children returns the node's child IDs. The slice is owned by the
// scene and must not be mutated.
func (n *Node) Children() []NodeID { return n.children }

// Scene owns the node arena and the light.
type Scene struct {
	nodes []Node
	roots []NodeID
	Light Light
}

// New returns an empty scene with a default white light.
func New() *Scene {
	return &Scene{
		Light: NewLight(math.Vec3{X: 5, Y: 10, Z: 5}, math.Vec3{X: 1, Y: 1, Z: 1}),
	}
}

// AddNode appends a root node and returns its ID.
func (s *Scene) AddNode(name string, mesh *model.Mesh) NodeID {
	return s.addNode(name, mesh, NoNode)
}

// AddChild appends a node under parent and returns its ID.
func (s *Scene) AddChild(parent NodeID, name string, mesh *model.Mesh) (NodeID, error) {
	if !s.valid(parent) {
		return NoNode, fmt.Errorf("scene: invalid parent node %d", parent)
	}
	id := s.addNode(name, mesh, parent)
	s.nodes[parent].children = append(s.nodes[parent].children, id)
	return id, nil
}

func (s *Scene) addNode(name string, mesh *model.Mesh, parent NodeID) NodeID {
	id := NodeID(len(s.nodes))
	s.nodes = append(s.nodes, Node{
		Name:      name,
		Transform: math.TransformIdentity(),
		Mesh:      mesh,
		parent:    parent,
	})
	if parent == NoNode {
		s.roots = append(s.roots, id)
	}
	return id
}

// Node returns a pointer into the arena. The pointer stays valid until
// the next AddNode or AddChild.
func (s *Scene) Node(id NodeID) (*Node, bool) {
	if !s.valid(id) {
		return nil, false
	}
	return &s.nodes[id], true
}

// Len returns the number of nodes in the arena.
func (s *Scene) Len() int { return len(s.nodes) }

// Roots returns the IDs of all root nodes.
func (s *Scene) Roots() []NodeID { return s.roots }

// WorldTransform composes the transforms from the root down to id.
func (s *Scene) WorldTransform(id NodeID) (math.Mat4, error) {
	if !s.valid(id) {
		return math.Mat4{}, fmt.Errorf("scene: invalid node %d", id)
	}
	world := s.nodes[id].Transform.ToMatrix()
	for parent := s.nodes[id].parent; parent != NoNode; parent = s.nodes[parent].parent {
		world = s.nodes[parent].Transform.ToMatrix().Mul(world)
	}
	return world, nil
}

// Traverse walks the graph depth-first from the roots, calling fn for
// every node with its accumulated world transform.
func (s *Scene) Traverse(fn func(id NodeID, node *Node, world math.Mat4)) {
	for _, root := range s.roots {
		s.traverse(root, math.Identity(), fn)
	}
}

func (s *Scene) traverse(id NodeID, parent math.Mat4, fn func(NodeID, *Node, math.Mat4)) {
	node := &s.nodes[id]
	world := parent.Mul(node.Transform.ToMatrix())
	fn(id, node, world)
	for _, child := range node.children {
		s.traverse(child, world, fn)
	}
}

func (s *Scene) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(s.nodes)
}
