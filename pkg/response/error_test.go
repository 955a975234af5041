package response

import "testing"

func TestFlattenErrors(t *testing.T) {
	errs := map[string][]string{
		"title":      {"标题不能为空"},
		"categoryId": {"分类不存在", "分类已停用"},
	}
	got := FlattenErrors(errs)
	want := "categoryId: 分类不存在; 分类已停用, title: 标题不能为空"
	if got != want {
		t.Fatalf("FlattenErrors = %q, want %q", got, want)
	}

	if FlattenErrors(nil) != "" {
		t.Fatal("empty map should flatten to empty string")
	}
}

func TestBizErrorMessage(t *testing.T) {
	plain := NewError(404, "创意不存在")
	if plain.Error() != "创意不存在" {
		t.Fatalf("got %q", plain.Error())
	}

	withFields := NewValidationError("参数校验失败", map[string][]string{"title": {"标题不能为空"}})
	want := "参数校验失败: title: 标题不能为空"
	if withFields.Error() != want {
		t.Fatalf("got %q, want %q", withFields.Error(), want)
	}
}
