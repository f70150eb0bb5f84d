package vectordb

import "time"

// Document represents a chunk of extracted document text to be stored and searched.
type Document struct {
	ID       string
	Content  string
	Metadata DocumentMetadata
}

// DocumentMetadata holds structured information about where a chunk came from.
type DocumentMetadata struct {
	SourceFile  string
	Title       string
	Page        int
	ChunkIndex  int
	ContentHash string
	LastUpdated time.Time
}

// SearchResult pairs a document with its similarity score.
type SearchResult struct {
	Document   Document
	Similarity float32
}

// SearchFilter allows narrowing search results by metadata fields.
type SearchFilter struct {
	SourceFile *string
	Page       *int
}
