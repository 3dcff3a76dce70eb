package domain

// domain package contains the Domain Models of the DocsToKG web application.
//
// # Entities
//
// - `user`: an account. It has a role (`admin` or ordinary `user`) and can be blocked by admins.
// Deleting a user removes everything the user owns; that is done by the database schema (cascade),
// not by the application.
//
// - `project`: a named group of documents owned by a user. It is identified by (user id, project name).
//
// - `run`: one execution of the extraction pipeline over documents of a project.
// A run has five extraction tasks (metadata, text, figures, tables and formulas).
// Each task can be enabled or not, and has a progress percentage (0-100).
//
// - `document`: a file uploaded into a project. A document belongs to exactly one run,
// and has per-task flags telling which extraction has completed for the document.
//
// - `setting`: per-project configuration of LLM, embedding model and Neo4j.
//
// Runs and documents are created by the ingestion pipeline, which is out of this repository.
// This application reads them and reports progress.
