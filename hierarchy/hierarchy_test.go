package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"polygen-backend/models"
)

func category(id primitive.ObjectID, slug string, parent *primitive.ObjectID) models.Category {
	return models.Category{ID: id, Slug: slug, Name: slug, ParentID: parent}
}

func TestBuildTree_EmptyInput(t *testing.T) {
	assert.Empty(t, BuildTree(nil))
	assert.Empty(t, BuildTree([]models.Category{}))
}

func TestBuildTree_RootsAtDepthZero(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	forest := BuildTree([]models.Category{
		category(a, "switchgear", nil),
		category(b, "cables", nil),
	})

	require.Len(t, forest, 2)
	assert.Equal(t, "switchgear", forest[0].Slug)
	assert.Equal(t, "cables", forest[1].Slug)
	assert.Empty(t, forest[0].Children)
	assert.Empty(t, forest[1].Children)
}

func TestBuildTree_NestsChildrenUnderParent(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	c := primitive.NewObjectID()

	forest := BuildTree([]models.Category{
		category(a, "switchgear", nil),
		category(b, "breakers", &a),
		category(c, "fuses", &a),
	})

	require.Len(t, forest, 1)
	require.Len(t, forest[0].Children, 2)
	// Urutan anak mengikuti urutan input
	assert.Equal(t, "breakers", forest[0].Children[0].Slug)
	assert.Equal(t, "fuses", forest[0].Children[1].Slug)
}

func TestBuildTree_DanglingParentBecomesRoot(t *testing.T) {
	gone := primitive.NewObjectID()
	orphan := primitive.NewObjectID()

	forest := BuildTree([]models.Category{
		category(orphan, "orphan", &gone),
	})

	require.Len(t, forest, 1)
	assert.Equal(t, "orphan", forest[0].Slug)
}

func TestBuildTree_CycleDoesNotLoop(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	// a dan b saling menunjuk sebagai parent
	forest := BuildTree([]models.Category{
		category(a, "first", &b),
		category(b, "second", &a),
	})

	// Siklus diangkat sebagai satu akar, tidak ada simpul yang hilang
	require.Len(t, forest, 1)
	assert.Equal(t, "first", forest[0].Slug)
	require.Len(t, forest[0].Children, 1)
	assert.Equal(t, "second", forest[0].Children[0].Slug)
	assert.Empty(t, forest[0].Children[0].Children)
}

func TestBuildTree_SelfParentDoesNotLoop(t *testing.T) {
	a := primitive.NewObjectID()

	forest := BuildTree([]models.Category{
		category(a, "self", &a),
	})

	require.Len(t, forest, 1)
	assert.Equal(t, "self", forest[0].Slug)
	assert.Empty(t, forest[0].Children)
}

func TestFlatten_IsInverseOfBuildTree(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	c := primitive.NewObjectID()
	d := primitive.NewObjectID()

	input := []models.Category{
		category(a, "root-one", nil),
		category(b, "child", &a),
		category(c, "grandchild", &b),
		category(d, "root-two", nil),
	}

	once := Flatten(BuildTree(input))
	twice := Flatten(BuildTree(once))
	assert.Equal(t, once, twice)

	// Semua record tetap ada, tanpa field children yang bocor
	require.Len(t, once, len(input))
	seen := map[string]bool{}
	for _, cat := range once {
		seen[cat.Slug] = true
	}
	assert.Len(t, seen, len(input))
}

func TestFlatten_PreservesPreorder(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	c := primitive.NewObjectID()

	flat := Flatten(BuildTree([]models.Category{
		category(a, "root", nil),
		category(b, "first-child", &a),
		category(c, "second-child", &a),
	}))

	require.Len(t, flat, 3)
	assert.Equal(t, "root", flat[0].Slug)
	assert.Equal(t, "first-child", flat[1].Slug)
	assert.Equal(t, "second-child", flat[2].Slug)
}

func TestAncestorChain_OrderedOutermostFirst(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	c := primitive.NewObjectID()

	all := []models.Category{
		category(a, "a", nil),
		category(b, "b", &a),
		category(c, "c", &b),
	}

	chain, err := AncestorChain(c, all)
	require.NoError(t, err)
	require.Len(t, chain, 3)
	assert.Equal(t, "a", chain[0].Slug)
	assert.Equal(t, "b", chain[1].Slug)
	assert.Equal(t, "c", chain[2].Slug)
}

func TestAncestorChain_RootReturnsItself(t *testing.T) {
	a := primitive.NewObjectID()
	all := []models.Category{category(a, "a", nil)}

	chain, err := AncestorChain(a, all)
	require.NoError(t, err)
	require.Len(t, chain, 1)
	assert.Equal(t, "a", chain[0].Slug)
}

func TestAncestorChain_UnknownCategory(t *testing.T) {
	_, err := AncestorChain(primitive.NewObjectID(), nil)
	assert.Error(t, err)
}

func TestAncestorChain_CycleReturnsError(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	all := []models.Category{
		category(a, "a", &b),
		category(b, "b", &a),
	}

	_, err := AncestorChain(a, all)
	assert.ErrorIs(t, err, ErrCycle)
}

func TestAncestorChain_StopsAtDeletedParent(t *testing.T) {
	gone := primitive.NewObjectID()
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	all := []models.Category{
		category(a, "a", &gone),
		category(b, "b", &a),
	}

	chain, err := AncestorChain(b, all)
	require.NoError(t, err)
	require.Len(t, chain, 2)
	assert.Equal(t, "a", chain[0].Slug)
	assert.Equal(t, "b", chain[1].Slug)
}
