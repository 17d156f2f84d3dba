package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-inventory-hub/internal/schema"
	"github.com/MKhiriev/go-inventory-hub/models"
)

// Table names.
const (
	tableInventories      = "inventories"
	tableInventoryTags    = "inventory_tags"
	tableTags             = "tags"
	tableCategories       = "categories"
	tableItems            = "items"
	tableFieldDefinitions = "field_definitions"
	tableAccessGrants     = "access_grants"
	tableDiscussionPosts  = "discussion_posts"
)

// Search and lookup limits.
const (
	SearchResultLimit = 50
	TagSuggestLimit   = 5
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var inventoryColumns = []string{
	"id", "creator_id", "title", "description", "image_url", "category_id",
	"is_public", "version", "created_at", "updated_at",
}

func itemColumns() []string {
	cols := make([]string, 0, 20)
	cols = append(cols, "id", "inventory_id")
	cols = append(cols, schema.Columns()...)
	return append(cols, "version", "created_at", "updated_at")
}

var fieldDefinitionColumns = []string{
	"id", "inventory_id", "field_key", "field_type", "label", "description",
	"is_enabled", "display_order",
}

var postColumns = []string{
	"id", "inventory_id", "user_id", "user_email", "user_image_url", "content",
	"created_at", "updated_at",
}

// ── inventories ──────────────────────────────────────────────────────────────

func buildSelectInventoryQuery(id int64) (string, []any, error) {
	return psql.Select(inventoryColumns...).
		From(tableInventories).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildListInventoriesQuery selects inventories owned by userID or shared
// with them through a grant, most recently updated first.
func buildListInventoriesQuery(userID string) (string, []any, error) {
	return psql.Select(inventoryColumns...).
		From(tableInventories).
		Where(sq.Or{
			sq.Eq{"creator_id": userID},
			sq.Expr("id IN (SELECT inventory_id FROM "+tableAccessGrants+" WHERE user_id = ?)", userID),
		}).
		OrderBy("updated_at DESC", "id DESC").
		ToSql()
}

// buildSearchInventoriesQuery ranks inventories by the weighted title and
// description document.
func buildSearchInventoriesQuery(text string, limit uint64) (string, []any, error) {
	return psql.Select(inventoryColumns...).
		From(tableInventories).
		Where(sq.Expr("search_vector @@ plainto_tsquery('english', ?)", text)).
		OrderByClause("ts_rank(search_vector, plainto_tsquery('english', ?)) DESC", text).
		OrderBy("id DESC").
		Limit(limit).
		ToSql()
}

func buildInsertInventoryQuery(req models.InventoryCreateRequest) (string, []any, error) {
	return psql.Insert(tableInventories).
		Columns("creator_id", "title", "description", "image_url", "category_id", "is_public").
		Values(req.CreatorID, req.Title, emptyToNil(req.Description), req.ImageURL, req.CategoryID, req.IsPublic).
		Suffix("RETURNING id").
		ToSql()
}

// inventoryMutation converts the column part of patch into a Mutation.
// Tags are stored separately.
func inventoryMutation(patch models.InventoryPatch) Mutation {
	set := Mutation{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = emptyToNil(patch.Description)
	}
	if patch.CategoryID != nil {
		// zero clears the category
		set["category_id"] = zeroToNil(*patch.CategoryID)
	}
	if patch.IsPublic != nil {
		set["is_public"] = *patch.IsPublic
	}
	if patch.ImageURL != nil {
		set["image_url"] = *patch.ImageURL
	}
	return set
}

func buildSelectInventoryTagsQuery(inventoryIDs ...int64) (string, []any, error) {
	return psql.Select("it.inventory_id", "t.name").
		From(tableInventoryTags + " it").
		Join(tableTags + " t ON t.id = it.tag_id").
		Where(sq.Eq{"it.inventory_id": inventoryIDs}).
		OrderBy("t.name").
		ToSql()
}

func buildUpsertTagQuery(name string) (string, []any, error) {
	return psql.Insert(tableTags).
		Columns("name").
		Values(name).
		Suffix("ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name RETURNING id").
		ToSql()
}

func buildLinkTagQuery(inventoryID, tagID int64) (string, []any, error) {
	return psql.Insert(tableInventoryTags).
		Columns("inventory_id", "tag_id").
		Values(inventoryID, tagID).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
}

func buildClearTagsQuery(inventoryID int64) (string, []any, error) {
	return psql.Delete(tableInventoryTags).
		Where(sq.Eq{"inventory_id": inventoryID}).
		ToSql()
}

// ── items ────────────────────────────────────────────────────────────────────

func buildSelectItemQuery(inventoryID, itemID int64) (string, []any, error) {
	return psql.Select(itemColumns()...).
		From(tableItems).
		Where(sq.Eq{"id": itemID, "inventory_id": inventoryID}).
		ToSql()
}

func buildListItemsQuery(inventoryID int64) (string, []any, error) {
	return psql.Select(itemColumns()...).
		From(tableItems).
		Where(sq.Eq{"inventory_id": inventoryID}).
		OrderBy("id").
		ToSql()
}

func buildInsertItemQuery(inventoryID int64, set Mutation) (string, []any, error) {
	return psql.Insert(tableItems).
		SetMap(withColumn(set, "inventory_id", inventoryID)).
		Suffix("RETURNING " + strings.Join(itemColumns(), ", ")).
		ToSql()
}

// itemMutation maps slot values onto their storage columns.
func itemMutation(values models.SlotValues) (Mutation, error) {
	set := make(Mutation, len(values))
	for key, v := range values {
		col, err := schema.Column(key)
		if err != nil {
			return nil, err
		}
		set[col] = v
	}
	return set, nil
}

// buildItemStatsQuery computes count, avg, min and max of each numeric slot
// in keys. Aggregates skip NULL slot values.
func buildItemStatsQuery(inventoryID int64, keys []models.SlotKey) (string, []any, error) {
	if len(keys) == 0 {
		return "", nil, fmt.Errorf("%w: no numeric fields", ErrBuildingSQLQuery)
	}

	cols := make([]string, 0, len(keys)*4)
	for _, key := range keys {
		family, err := schema.ResolveSlotType(key)
		if err != nil {
			return "", nil, err
		}
		if family != models.FieldTypeNumber {
			return "", nil, fmt.Errorf("%w: %s is not numeric", ErrBuildingSQLQuery, key)
		}
		col, _ := schema.Column(key)
		cols = append(cols,
			"COUNT("+col+")", "AVG("+col+")", "MIN("+col+")", "MAX("+col+")")
	}

	return psql.Select(cols...).
		From(tableItems).
		Where(sq.Eq{"inventory_id": inventoryID}).
		ToSql()
}

// ── field definitions ────────────────────────────────────────────────────────

func buildListFieldDefinitionsQuery(inventoryID int64) (string, []any, error) {
	return psql.Select(fieldDefinitionColumns...).
		From(tableFieldDefinitions).
		Where(sq.Eq{"inventory_id": inventoryID}).
		ToSql()
}

// fieldDefinitionMutation returns the columns present in patch.
func fieldDefinitionMutation(patch models.FieldDefinitionPatch) Mutation {
	set := Mutation{}
	if patch.Label != nil {
		set["label"] = *patch.Label
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.IsEnabled != nil {
		set["is_enabled"] = *patch.IsEnabled
	}
	if patch.DisplayOrder != nil {
		set["display_order"] = *patch.DisplayOrder
	}
	return set
}

// buildUpdateFieldDefinitionQuery changes an existing definition only.
// It affects no rows when the definition does not exist.
func buildUpdateFieldDefinitionQuery(inventoryID int64, patch models.FieldDefinitionPatch) (string, []any, error) {
	return psql.Update(tableFieldDefinitions).
		SetMap(fieldDefinitionMutation(patch)).
		Where(sq.Eq{"inventory_id": inventoryID, "field_key": string(patch.SlotKey)}).
		ToSql()
}

// buildUpsertFieldDefinitionQuery creates the definition or merges the
// present patch columns into the existing one.
func buildUpsertFieldDefinitionQuery(inventoryID int64, family models.FieldType, patch models.FieldDefinitionPatch) (string, []any, error) {
	def := patch.Apply(models.FieldDefinition{})

	set := fieldDefinitionMutation(patch)
	cols := make([]string, 0, len(set))
	for _, c := range []string{"label", "description", "is_enabled", "display_order"} {
		if _, ok := set[c]; ok {
			cols = append(cols, c+" = EXCLUDED."+c)
		}
	}

	return psql.Insert(tableFieldDefinitions).
		Columns("inventory_id", "field_key", "field_type", "label", "description", "is_enabled", "display_order").
		Values(inventoryID, string(patch.SlotKey), string(family), def.Label, def.Description, def.IsEnabled, def.DisplayOrder).
		Suffix("ON CONFLICT (inventory_id, field_key) DO UPDATE SET " + strings.Join(cols, ", ")).
		ToSql()
}

// ── access grants ────────────────────────────────────────────────────────────

func buildHasGrantQuery(inventoryID int64, userID string) (string, []any, error) {
	return psql.Select("1").
		Prefix("SELECT EXISTS (").
		From(tableAccessGrants).
		Where(sq.Eq{"inventory_id": inventoryID, "user_id": userID}).
		Suffix(")").
		ToSql()
}

func buildListGrantsQuery(inventoryID int64) (string, []any, error) {
	return psql.Select("inventory_id", "user_id", "created_at").
		From(tableAccessGrants).
		Where(sq.Eq{"inventory_id": inventoryID}).
		OrderBy("created_at", "user_id").
		ToSql()
}

func buildInsertGrantQuery(inventoryID int64, userID string) (string, []any, error) {
	return psql.Insert(tableAccessGrants).
		Columns("inventory_id", "user_id").
		Values(inventoryID, userID).
		Suffix("RETURNING inventory_id, user_id, created_at").
		ToSql()
}

func buildDeleteGrantsQuery(inventoryID int64, userIDs []string) (string, []any, error) {
	return psql.Delete(tableAccessGrants).
		Where(sq.Eq{"inventory_id": inventoryID, "user_id": userIDs}).
		ToSql()
}

// ── discussion posts ─────────────────────────────────────────────────────────

func buildListPostsQuery(inventoryID int64) (string, []any, error) {
	return psql.Select(postColumns...).
		From(tableDiscussionPosts).
		Where(sq.Eq{"inventory_id": inventoryID}).
		OrderBy("created_at", "id").
		ToSql()
}

func buildSelectPostQuery(inventoryID, postID int64) (string, []any, error) {
	return psql.Select(postColumns...).
		From(tableDiscussionPosts).
		Where(sq.Eq{"id": postID, "inventory_id": inventoryID}).
		ToSql()
}

func buildInsertPostQuery(post models.DiscussionPost) (string, []any, error) {
	return psql.Insert(tableDiscussionPosts).
		Columns("inventory_id", "user_id", "user_email", "user_image_url", "content").
		Values(post.InventoryID, post.UserID, post.UserEmail, post.UserImageURL, post.Content).
		Suffix("RETURNING " + strings.Join(postColumns, ", ")).
		ToSql()
}

func buildDeletePostQuery(inventoryID, postID int64) (string, []any, error) {
	return psql.Delete(tableDiscussionPosts).
		Where(sq.Eq{"id": postID, "inventory_id": inventoryID}).
		ToSql()
}

// ── catalog ──────────────────────────────────────────────────────────────────

func buildListCategoriesQuery() (string, []any, error) {
	return psql.Select("id", "name").
		From(tableCategories).
		OrderBy("name").
		ToSql()
}

// buildSearchTagsQuery matches tags starting with prefix. LIKE wildcards in
// prefix are matched literally.
func buildSearchTagsQuery(prefix string, limit uint64) (string, []any, error) {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(prefix)

	return psql.Select("id", "name").
		From(tableTags).
		Where(sq.Like{"name": escaped + "%"}).
		OrderBy("name").
		Limit(limit).
		ToSql()
}

// ── helpers ──────────────────────────────────────────────────────────────────

// emptyToNil stores an empty optional text as NULL.
func emptyToNil(s *string) any {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}

func zeroToNil(id int64) any {
	if id <= 0 {
		return nil
	}
	return id
}

func withColumn(set Mutation, column string, value any) map[string]any {
	out := make(map[string]any, len(set)+1)
	for k, v := range set {
		out[k] = v
	}
	out[column] = value
	return out
}
