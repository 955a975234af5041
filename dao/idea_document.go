package dao

import (
	"context"

	"IdeaHub/models"

	"gorm.io/gorm"
)

type IdeaDocumentDAO struct {
	Repo[models.IdeaDocument]
}

func NewIdeaDocumentDAO(db *gorm.DB) *IdeaDocumentDAO {
	return &IdeaDocumentDAO{Repo: NewRepo[models.IdeaDocument](db)}
}

func (d *IdeaDocumentDAO) BatchCreate(ctx context.Context, docs []*models.IdeaDocument) error {
	if len(docs) == 0 {
		return nil
	}
	return d.Db.WithContext(ctx).Create(&docs).Error
}

func (d *IdeaDocumentDAO) ListByIdeaID(ctx context.Context, ideaID uint64) ([]*models.IdeaDocument, error) {
	var docs []*models.IdeaDocument
	err := d.Db.WithContext(ctx).
		Where("idea_id = ?", ideaID).
		Order("id ASC").
		Find(&docs).Error
	return docs, err
}

// BatchListByIdeaIDs 批量查询附件, 按创意分组
func (d *IdeaDocumentDAO) BatchListByIdeaIDs(ctx context.Context, ideaIDs []uint64) (map[uint64][]*models.IdeaDocument, error) {
	result := make(map[uint64][]*models.IdeaDocument, len(ideaIDs))
	if len(ideaIDs) == 0 {
		return result, nil
	}
	var docs []*models.IdeaDocument
	err := d.Db.WithContext(ctx).
		Where("idea_id IN ?", ideaIDs).
		Order("id ASC").
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	for _, doc := range docs {
		result[doc.IdeaID] = append(result[doc.IdeaID], doc)
	}
	return result, nil
}
