package generator

import (
	"github.com/go-faster/errors"
	"github.com/yaroher/protoc-gen-go-leo/generator/field"
	"github.com/yaroher/protoc-gen-go-leo/internal/help"
	"go.uber.org/zap"
	"google.golang.org/protobuf/compiler/protogen"
)

type FileGen struct {
	g    *Generator
	file *protogen.File
	out  *protogen.GeneratedFile
	log  *zap.Logger
}

func (g *Generator) NewFileGen(f *protogen.File) *FileGen {
	out := g.Plugin.NewGeneratedFile(f.GeneratedFilenamePrefix+".pb.leo.go", f.GoImportPath)
	return &FileGen{
		g:    g,
		file: f,
		out:  out,
		log:  g.log.Named("FileGen").With(zap.String("file", f.Desc.Path())),
	}
}

func (fg *FileGen) P(v ...any) {
	fg.out.P(v...)
}

func (fg *FileGen) ident(path protogen.GoImportPath, name string) string {
	return fg.out.QualifiedGoIdent(path.Ident(name))
}

// GenFile builds every message model before printing anything, so a bad
// field fails the file without emitting half of it.
func (fg *FileGen) GenFile() error {
	var models []*messageModel
	err := help.WalkMessages(fg.file.Messages, func(msg *protogen.Message) error {
		m, err := fg.buildModel(msg)
		if err != nil {
			return errors.Wrapf(err, "message %s", msg.Desc.FullName())
		}
		models = append(models, m)
		return nil
	})
	if err != nil {
		return err
	}
	if len(models) == 0 {
		fg.out.Skip()
		return nil
	}

	fg.P("// Code generated by protoc-gen-go-leo. DO NOT EDIT.")
	fg.P("// source: ", fg.file.Desc.Path())
	fg.P()
	fg.P("package ", fg.file.GoPackageName)
	fg.P()

	for _, m := range models {
		if err := fg.genMessage(m); err != nil {
			return errors.Wrapf(err, "message %s", m.msg.Desc.FullName())
		}
	}
	return nil
}

func (fg *FileGen) buildModel(msg *protogen.Message) (*messageModel, error) {
	className := msg.GoIdent.GoName + fg.g.Settings.Suffix
	ctx := field.NewContext(className, fg.out)
	m := &messageModel{msg: msg, className: className, ctx: ctx}
	oneofs := make(map[*protogen.Oneof]*oneofModel)

	for _, f := range msg.Fields {
		d, err := field.DescriptorFromProto(f.Desc)
		if errors.Is(err, field.ErrUnsupportedKind) && fg.g.Settings.SkipUnsupported {
			fg.log.Warn("skip unsupported field",
				zap.String("field", string(f.Desc.FullName())),
				zap.String("kind", f.Desc.Kind().String()),
			)
			continue
		}
		if err != nil {
			return nil, err
		}
		info := &field.FieldInfo{
			CapitalizedName: f.GoName,
			ConstantName:    className + f.GoName + "FieldNumber",
			StorageName:     help.StorageName(f.GoName),
		}
		ctx.AddField(d.Number, info)

		var om *oneofModel
		if d.InOneof() {
			om = oneofs[f.Oneof]
			if om == nil {
				om = &oneofModel{oneof: f.Oneof, info: oneofInfo(className, f.Oneof)}
				ctx.AddOneof(d.Oneof, om.info)
				oneofs[f.Oneof] = om
				m.oneofs = append(m.oneofs, om)
			}
		}

		gen, err := field.New(d, m.numBits, m.numBits, ctx)
		if err != nil {
			return nil, err
		}
		fm := &fieldModel{field: f, desc: d, info: info, gen: gen, bit: m.numBits}
		m.numBits += max(gen.NumBitsForMessage(), gen.NumBitsForBuilder())
		m.fields = append(m.fields, fm)
		if om != nil {
			om.fields = append(om.fields, fm)
		}
		fg.log.Debug("field",
			zap.String("field", string(f.Desc.FullName())),
			zap.Int("bit", fm.bit),
			zap.Bool("presence", d.HasPresence),
			zap.Bool("repeated", d.Repeated),
			zap.String("oneof", d.Oneof),
		)
	}
	return m, nil
}

func oneofInfo(className string, oneof *protogen.Oneof) *field.OneofInfo {
	caseType := className + "_" + oneof.GoName + "Case"
	storage := help.StorageName(oneof.GoName)
	return &field.OneofInfo{
		CapitalizedName: oneof.GoName,
		StorageName:     storage,
		CaseField:       storage[:len(storage)-1] + "Case_",
		CaseType:        caseType,
		NotSetCase:      caseType + "_NotSet",
	}
}
