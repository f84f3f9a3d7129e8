package graph

// Schema is the SDL served by this process. It is the single source of
// truth for the type graph; the `todos schema` command validates it and
// emits it as a schema file artifact.
const Schema = `schema {
  query: Query
  mutation: Mutation
}

"An object with a globally unique ID"
interface Node {
  id: ID!
}

type Query {
  "Fetches any registered node type by its global id"
  node(id: ID!): Node
  "The current user, or a user by its local id"
  user(id: String): User
}

type User implements Node {
  id: ID!
  userId: String!
  todos(status: String = "any", first: Int, after: String, last: Int, before: String): TodoConnection!
  totalCount: Int!
  completedCount: Int!
}

type Todo implements Node {
  id: ID!
  text: String!
  complete: Boolean!
}

type TodoConnection {
  edges: [TodoEdge!]!
  pageInfo: PageInfo!
  totalCount: Int!
}

type TodoEdge {
  node: Todo!
  cursor: String!
}

type PageInfo {
  hasNextPage: Boolean!
  hasPreviousPage: Boolean!
  startCursor: String
  endCursor: String
}

type Mutation {
  addTodo(input: AddTodoInput!): AddTodoPayload
  changeTodoStatus(input: ChangeTodoStatusInput!): ChangeTodoStatusPayload
  markAllTodos(input: MarkAllTodosInput!): MarkAllTodosPayload
  removeCompletedTodos(input: RemoveCompletedTodosInput!): RemoveCompletedTodosPayload
  removeTodo(input: RemoveTodoInput!): RemoveTodoPayload
  renameTodo(input: RenameTodoInput!): RenameTodoPayload
}

input AddTodoInput {
  text: String!
  clientMutationId: String
}

type AddTodoPayload {
  todoEdge: TodoEdge!
  user: User!
  clientMutationId: String
}

input ChangeTodoStatusInput {
  id: ID!
  complete: Boolean!
  clientMutationId: String
}

type ChangeTodoStatusPayload {
  todo: Todo
  user: User!
  clientMutationId: String
}

input MarkAllTodosInput {
  complete: Boolean!
  clientMutationId: String
}

type MarkAllTodosPayload {
  changedTodos: [Todo!]!
  user: User!
  clientMutationId: String
}

input RemoveCompletedTodosInput {
  clientMutationId: String
}

type RemoveCompletedTodosPayload {
  deletedTodoIds: [String!]!
  user: User!
  clientMutationId: String
}

input RemoveTodoInput {
  id: ID!
  clientMutationId: String
}

type RemoveTodoPayload {
  deletedTodoId: ID
  user: User!
  clientMutationId: String
}

input RenameTodoInput {
  id: ID!
  text: String!
  clientMutationId: String
}

type RenameTodoPayload {
  todo: Todo
  user: User!
  clientMutationId: String
}
`
