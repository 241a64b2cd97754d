// Package hierarchy membangun pohon kategori dari daftar datar dan sebaliknya.
package hierarchy

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"polygen-backend/models"
)

// ErrCycle dikembalikan ketika rantai parent kategori membentuk siklus.
var ErrCycle = errors.New("category hierarchy contains a cycle")

// BuildTree membangun hutan kategori dari daftar datar.
// Kategori tanpa parent, atau yang parent-nya tidak ditemukan, menjadi akar.
// Urutan relatif input dipertahankan. Siklus parent tidak membuat traversal
// berputar: simpul yang tidak terjangkau dari akar manapun dipromosikan
// menjadi akar sesuai urutan input.
func BuildTree(categories []models.Category) []*models.CategoryNode {
	nodes := make([]*models.CategoryNode, 0, len(categories))
	index := make(map[primitive.ObjectID]*models.CategoryNode, len(categories))
	for _, cat := range categories {
		node := &models.CategoryNode{Category: cat, Children: []*models.CategoryNode{}}
		nodes = append(nodes, node)
		index[cat.ID] = node
	}

	// Kelompokkan anak per parent, urutan input dipertahankan
	childrenOf := make(map[primitive.ObjectID][]*models.CategoryNode, len(categories))
	roots := []*models.CategoryNode{}
	for _, node := range nodes {
		if node.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		if _, ok := index[*node.ParentID]; !ok {
			// Parent sudah dihapus: jangan hilangkan kategorinya
			roots = append(roots, node)
			continue
		}
		childrenOf[*node.ParentID] = append(childrenOf[*node.ParentID], node)
	}

	visited := make(map[primitive.ObjectID]bool, len(nodes))
	for _, root := range roots {
		attach(root, childrenOf, visited)
	}

	// Simpul yang tersisa adalah bagian dari siklus; angkat jadi akar
	for _, node := range nodes {
		if !visited[node.ID] {
			roots = append(roots, node)
			attach(node, childrenOf, visited)
		}
	}

	return roots
}

// attach menelusuri subtree secara iteratif dan memasang anak pada parent-nya.
// Simpul yang sudah dikunjungi tidak dipasang dua kali.
func attach(root *models.CategoryNode, childrenOf map[primitive.ObjectID][]*models.CategoryNode, visited map[primitive.ObjectID]bool) {
	if visited[root.ID] {
		return
	}
	visited[root.ID] = true

	stack := []*models.CategoryNode{root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, child := range childrenOf[node.ID] {
			if visited[child.ID] {
				continue
			}
			visited[child.ID] = true
			node.Children = append(node.Children, child)
			stack = append(stack, child)
		}
	}
}

// Flatten mengubah hutan kategori kembali menjadi daftar datar (preorder),
// tanpa field Children. Inverse dari BuildTree untuk input yang wellformed.
func Flatten(forest []*models.CategoryNode) []models.Category {
	flat := make([]models.Category, 0, len(forest))
	for _, root := range forest {
		flat = flattenNode(root, flat)
	}
	return flat
}

func flattenNode(node *models.CategoryNode, flat []models.Category) []models.Category {
	flat = append(flat, node.Category)
	for _, child := range node.Children {
		flat = flattenNode(child, flat)
	}
	return flat
}

// AncestorChain mengembalikan rantai kategori dari leluhur terluar sampai
// kategori target (inklusif). Iterasi dibatasi jumlah kategori; siklus
// menghasilkan ErrCycle alih-alih loop tak berujung.
func AncestorChain(targetID primitive.ObjectID, categories []models.Category) ([]models.Category, error) {
	index := make(map[primitive.ObjectID]models.Category, len(categories))
	for _, cat := range categories {
		index[cat.ID] = cat
	}

	target, ok := index[targetID]
	if !ok {
		return nil, errors.New("category not found")
	}

	chain := []models.Category{target}
	current := target
	for i := 0; i < len(categories); i++ {
		if current.ParentID == nil {
			// Balik urutan: leluhur terluar lebih dulu
			for l, r := 0, len(chain)-1; l < r; l, r = l+1, r-1 {
				chain[l], chain[r] = chain[r], chain[l]
			}
			return chain, nil
		}
		parent, ok := index[*current.ParentID]
		if !ok {
			// Parent sudah dihapus: rantai berhenti di sini
			for l, r := 0, len(chain)-1; l < r; l, r = l+1, r-1 {
				chain[l], chain[r] = chain[r], chain[l]
			}
			return chain, nil
		}
		chain = append(chain, parent)
		current = parent
	}

	return nil, ErrCycle
}
