// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package codeparse

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path"
	"strconv"
	"strings"
)

// parseGo extracts declarations from Go source using the go/ast toolchain:
// the package clause, imports, type declarations, functions, and methods,
// plus contains, imports, embeds, and calls relationships.
func parseGo(code, filePath string) ([]Entity, []Relation, error) {
	fset := token.NewFileSet()
	name := filePath
	if name == "" {
		name = "input.go"
	}

	file, err := parser.ParseFile(fset, name, code, parser.ParseComments)
	if err != nil {
		return nil, nil, err
	}

	p := &goParser{fset: fset, file: filePath, pkg: file.Name.Name}

	p.entities = append(p.entities, Entity{
		Name: p.pkg,
		Kind: KindPackage,
		File: filePath,
		Line: p.line(file.Name.Pos()),
		Doc:  docText(file.Doc),
	})

	for _, imp := range file.Imports {
		p.handleImport(imp)
	}

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			if d.Tok == token.TYPE {
				for _, spec := range d.Specs {
					if ts, ok := spec.(*ast.TypeSpec); ok {
						p.handleType(ts, d)
					}
				}
			}
		case *ast.FuncDecl:
			p.handleFunc(d)
		}
	}

	return p.entities, p.relations, nil
}

type goParser struct {
	fset      *token.FileSet
	file      string
	pkg       string
	entities  []Entity
	relations []Relation
}

func (p *goParser) line(pos token.Pos) int {
	return p.fset.Position(pos).Line
}

func (p *goParser) handleImport(imp *ast.ImportSpec) {
	importPath, _ := strconv.Unquote(imp.Path.Value)
	name := path.Base(importPath)
	if imp.Name != nil {
		name = imp.Name.Name
	}

	p.entities = append(p.entities, Entity{
		Name: name,
		Kind: KindImport,
		File: p.file,
		Line: p.line(imp.Pos()),
	})
	p.relations = append(p.relations, Relation{
		Source: p.pkg,
		Target: importPath,
		Kind:   RelImports,
		File:   p.file,
		Line:   p.line(imp.Pos()),
	})
}

func (p *goParser) handleType(ts *ast.TypeSpec, decl *ast.GenDecl) {
	doc := docText(ts.Doc)
	if doc == "" {
		doc = docText(decl.Doc)
	}

	p.entities = append(p.entities, Entity{
		Name: ts.Name.Name,
		Kind: KindType,
		File: p.file,
		Line: p.line(ts.Pos()),
		Doc:  doc,
	})

	// Struct embedding is the closest Go analogue to inheritance.
	if st, ok := ts.Type.(*ast.StructType); ok {
		for _, field := range st.Fields.List {
			if len(field.Names) != 0 {
				continue
			}
			if base := exprName(field.Type); base != "" {
				p.relations = append(p.relations, Relation{
					Source: ts.Name.Name,
					Target: base,
					Kind:   RelEmbeds,
					File:   p.file,
					Line:   p.line(field.Pos()),
				})
			}
		}
	}
}

func (p *goParser) handleFunc(fn *ast.FuncDecl) {
	kind := KindFunc
	parent := ""
	if fn.Recv != nil && len(fn.Recv.List) > 0 {
		kind = KindMethod
		parent = exprName(fn.Recv.List[0].Type)
	}

	p.entities = append(p.entities, Entity{
		Name:   fn.Name.Name,
		Kind:   kind,
		File:   p.file,
		Line:   p.line(fn.Pos()),
		Parent: parent,
		Doc:    docText(fn.Doc),
	})

	if parent != "" {
		p.relations = append(p.relations, Relation{
			Source: parent,
			Target: fn.Name.Name,
			Kind:   RelContains,
			File:   p.file,
			Line:   p.line(fn.Pos()),
		})
	}

	// Record calls made inside the function body.
	caller := fn.Name.Name
	if fn.Body != nil {
		seen := make(map[string]bool)
		ast.Inspect(fn.Body, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}
			callee := exprName(call.Fun)
			if callee == "" || seen[callee] {
				return true
			}
			seen[callee] = true
			p.relations = append(p.relations, Relation{
				Source: caller,
				Target: callee,
				Kind:   RelCalls,
				File:   p.file,
				Line:   p.line(call.Pos()),
			})
			return true
		})
	}
}

// exprName flattens an expression to a dotted name: idents to their name,
// selectors to "x.Sel", pointers and indexes to their element name.
func exprName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.SelectorExpr:
		if base := exprName(e.X); base != "" {
			return base + "." + e.Sel.Name
		}
		return e.Sel.Name
	case *ast.StarExpr:
		return exprName(e.X)
	case *ast.IndexExpr:
		return exprName(e.X)
	case *ast.IndexListExpr:
		return exprName(e.X)
	}
	return ""
}

func docText(group *ast.CommentGroup) string {
	if group == nil {
		return ""
	}
	return strings.TrimSpace(group.Text())
}
