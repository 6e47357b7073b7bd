package ast

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string
}

func (e *LitExpr) NodePos() Position    { return e.Pos }
func (e *LitExpr) NodeEndPos() Position { return e.EndPos }
func (*LitExpr) NodeType() NodeType     { return LIT_EXPR }

func (e *PathExpr) NodePos() Position    { return e.Pos }
func (e *PathExpr) NodeEndPos() Position { return e.EndPos }
func (*PathExpr) NodeType() NodeType     { return PATH_EXPR }

func (e *ConstructExpr) NodePos() Position    { return e.Pos }
func (e *ConstructExpr) NodeEndPos() Position { return e.EndPos }
func (*ConstructExpr) NodeType() NodeType     { return CONSTRUCT_EXPR }

func (e *CallExpr) NodePos() Position    { return e.Pos }
func (e *CallExpr) NodeEndPos() Position { return e.EndPos }
func (*CallExpr) NodeType() NodeType     { return CALL_EXPR }

func (e *RecordExpr) NodePos() Position    { return e.Pos }
func (e *RecordExpr) NodeEndPos() Position { return e.EndPos }
func (*RecordExpr) NodeType() NodeType     { return RECORD_EXPR }

func (e *ListExpr) NodePos() Position    { return e.Pos }
func (e *ListExpr) NodeEndPos() Position { return e.EndPos }
func (*ListExpr) NodeType() NodeType     { return LIST_EXPR }

func (e *TupleExpr) NodePos() Position    { return e.Pos }
func (e *TupleExpr) NodeEndPos() Position { return e.EndPos }
func (*TupleExpr) NodeType() NodeType     { return TUPLE_EXPR }

func (e *ParenExpr) NodePos() Position    { return e.Pos }
func (e *ParenExpr) NodeEndPos() Position { return e.EndPos }
func (*ParenExpr) NodeType() NodeType     { return PAREN_EXPR }

func (e *AnnotExpr) NodePos() Position    { return e.Pos }
func (e *AnnotExpr) NodeEndPos() Position { return e.EndPos }
func (*AnnotExpr) NodeType() NodeType     { return ANNOT_EXPR }

func (e *OpenExpr) NodePos() Position    { return e.Pos }
func (e *OpenExpr) NodeEndPos() Position { return e.EndPos }
func (*OpenExpr) NodeType() NodeType     { return OPEN_EXPR }

func (e *QuoteExpr) NodePos() Position    { return e.Pos }
func (e *QuoteExpr) NodeEndPos() Position { return e.EndPos }
func (*QuoteExpr) NodeType() NodeType     { return QUOTE_EXPR }

func (e *EscapeExpr) NodePos() Position    { return e.Pos }
func (e *EscapeExpr) NodeEndPos() Position { return e.EndPos }
func (*EscapeExpr) NodeType() NodeType     { return ESCAPE_EXPR }

func (p *WildcardPat) NodePos() Position    { return p.Pos }
func (p *WildcardPat) NodeEndPos() Position { return p.EndPos }
func (*WildcardPat) NodeType() NodeType     { return WILDCARD_PAT }

func (p *VarPat) NodePos() Position    { return p.Pos }
func (p *VarPat) NodeEndPos() Position { return p.EndPos }
func (*VarPat) NodeType() NodeType     { return VAR_PAT }

func (p *LitPat) NodePos() Position    { return p.Pos }
func (p *LitPat) NodeEndPos() Position { return p.EndPos }
func (*LitPat) NodeType() NodeType     { return LIT_PAT }

func (p *ConstructPat) NodePos() Position    { return p.Pos }
func (p *ConstructPat) NodeEndPos() Position { return p.EndPos }
func (*ConstructPat) NodeType() NodeType     { return CONSTRUCT_PAT }

func (p *ListPat) NodePos() Position    { return p.Pos }
func (p *ListPat) NodeEndPos() Position { return p.EndPos }
func (*ListPat) NodeType() NodeType     { return LIST_PAT }

func (p *TuplePat) NodePos() Position    { return p.Pos }
func (p *TuplePat) NodeEndPos() Position { return p.EndPos }
func (*TuplePat) NodeType() NodeType     { return TUPLE_PAT }

func (p *RecordPat) NodePos() Position    { return p.Pos }
func (p *RecordPat) NodeEndPos() Position { return p.EndPos }
func (*RecordPat) NodeType() NodeType     { return RECORD_PAT }

func (p *QuotePat) NodePos() Position    { return p.Pos }
func (p *QuotePat) NodeEndPos() Position { return p.EndPos }
func (*QuotePat) NodeType() NodeType     { return QUOTE_PAT }

func (p *EscapePat) NodePos() Position    { return p.Pos }
func (p *EscapePat) NodeEndPos() Position { return p.EndPos }
func (*EscapePat) NodeType() NodeType     { return ESCAPE_PAT }

func (t *NamedType) NodePos() Position    { return t.Pos }
func (t *NamedType) NodeEndPos() Position { return t.EndPos }
func (*NamedType) NodeType() NodeType     { return NAMED_TYPE }

func (t *VarType) NodePos() Position    { return t.Pos }
func (t *VarType) NodeEndPos() Position { return t.EndPos }
func (*VarType) NodeType() NodeType     { return VAR_TYPE }

func (t *ArrowType) NodePos() Position    { return t.Pos }
func (t *ArrowType) NodeEndPos() Position { return t.EndPos }
func (*ArrowType) NodeType() NodeType     { return ARROW_TYPE }

func (t *ProductType) NodePos() Position    { return t.Pos }
func (t *ProductType) NodeEndPos() Position { return t.EndPos }
func (*ProductType) NodeType() NodeType     { return PRODUCT_TYPE }

func (t *EscapeType) NodePos() Position    { return t.Pos }
func (t *EscapeType) NodeEndPos() Position { return t.EndPos }
func (*EscapeType) NodeType() NodeType     { return ESCAPE_TYPE }

func (i *LetItem) NodePos() Position    { return i.Pos }
func (i *LetItem) NodeEndPos() Position { return i.EndPos }
func (*LetItem) NodeType() NodeType     { return LET_ITEM }

func (i *ExprItem) NodePos() Position    { return i.Pos }
func (i *ExprItem) NodeEndPos() Position { return i.EndPos }
func (*ExprItem) NodeType() NodeType     { return EXPR_ITEM }

func (i *LocItem) NodePos() Position    { return i.Pos }
func (i *LocItem) NodeEndPos() Position { return i.EndPos }
func (*LocItem) NodeType() NodeType     { return LOC_ITEM }

func (i *ValItem) NodePos() Position    { return i.Pos }
func (i *ValItem) NodeEndPos() Position { return i.EndPos }
func (*ValItem) NodeType() NodeType     { return VAL_ITEM }

func (i *EscapeItem) NodePos() Position    { return i.Pos }
func (i *EscapeItem) NodeEndPos() Position { return i.EndPos }
func (*EscapeItem) NodeType() NodeType     { return ESCAPE_ITEM }
