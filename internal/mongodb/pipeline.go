package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Stage is one named step of an aggregation pipeline. Naming the stages
// keeps pipeline assembly explicit: each optional input appends its own
// stage, and a builder's stage list can be asserted on in tests without a
// running database.
type Stage struct {
	Name string
	Doc  bson.D
}

// PipelineBuilder assembles an ordered list of named stages into a
// mongo.Pipeline. Stages are appended conditionally by pipeline-assembly
// code based on which request inputs are present.
type PipelineBuilder struct {
	stages []Stage
}

func NewPipeline() *PipelineBuilder {
	return &PipelineBuilder{}
}

func (b *PipelineBuilder) Append(name string, doc bson.D) *PipelineBuilder {
	b.stages = append(b.stages, Stage{Name: name, Doc: doc})
	return b
}

func (b *PipelineBuilder) Match(name string, filter bson.M) *PipelineBuilder {
	return b.Append(name, bson.D{{Key: "$match", Value: filter}})
}

// Lookup joins another collection on a local/foreign field pair into the
// named array field.
func (b *PipelineBuilder) Lookup(name, from, localField, foreignField, as string) *PipelineBuilder {
	return b.Append(name, bson.D{{Key: "$lookup", Value: bson.M{
		"from":         from,
		"localField":   localField,
		"foreignField": foreignField,
		"as":           as,
	}}})
}

func (b *PipelineBuilder) Unwind(name, path string) *PipelineBuilder {
	return b.Append(name, bson.D{{Key: "$unwind", Value: bson.M{
		"path":                       path,
		"preserveNullAndEmptyArrays": false,
	}}})
}

func (b *PipelineBuilder) Sort(name string, keys bson.D) *PipelineBuilder {
	return b.Append(name, bson.D{{Key: "$sort", Value: keys}})
}

func (b *PipelineBuilder) Skip(name string, n int64) *PipelineBuilder {
	return b.Append(name, bson.D{{Key: "$skip", Value: n}})
}

func (b *PipelineBuilder) Limit(name string, n int64) *PipelineBuilder {
	return b.Append(name, bson.D{{Key: "$limit", Value: n}})
}

// StageNames returns the names of the appended stages in order.
func (b *PipelineBuilder) StageNames() []string {
	names := make([]string, len(b.stages))
	for i, s := range b.stages {
		names[i] = s.Name
	}
	return names
}

// Stage returns the document of the named stage, or nil when absent.
func (b *PipelineBuilder) Stage(name string) bson.D {
	for _, s := range b.stages {
		if s.Name == name {
			return s.Doc
		}
	}
	return nil
}

func (b *PipelineBuilder) Build() mongo.Pipeline {
	pipeline := make(mongo.Pipeline, len(b.stages))
	for i, s := range b.stages {
		pipeline[i] = s.Doc
	}
	return pipeline
}
